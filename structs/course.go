package structs

// Course course with its owner, students and themes
type Course struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Owner     User    `json:"owner"`
	Students  []User  `json:"students"`
	Themes    []Theme `json:"themes"`
	CreatedAt *string `json:"created_at,omitempty"`
}

// Theme theme of a course, referencing the course by id
type Theme struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Course      int64      `json:"course"`
	Order       int        `json:"order"`
	Materials   []Material `json:"materials"`
	CreatedAt   string     `json:"created_at"`
}

// Material file attached to a theme
type Material struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	File  string `json:"file"`
	Theme int64  `json:"theme"`
	Order int    `json:"order"`
}

// FindTheme returns the theme with the given id, or nil.
func (c *Course) FindTheme(id int64) *Theme {
	if c == nil {
		return nil
	}
	for i := range c.Themes {
		if c.Themes[i].ID == id {
			t := c.Themes[i].Clone()
			return &t
		}
	}
	return nil
}

// FindMaterial returns the material with the given id, or nil.
func (t *Theme) FindMaterial(id int64) *Material {
	if t == nil {
		return nil
	}
	for i := range t.Materials {
		if t.Materials[i].ID == id {
			m := t.Materials[i]
			return &m
		}
	}
	return nil
}

// Clone returns a deep copy of the course.
func (c Course) Clone() Course {
	out := c
	if c.Students != nil {
		out.Students = append([]User(nil), c.Students...)
	}
	if c.Themes != nil {
		out.Themes = make([]Theme, len(c.Themes))
		for i := range c.Themes {
			out.Themes[i] = c.Themes[i].Clone()
		}
	}
	if c.CreatedAt != nil {
		v := *c.CreatedAt
		out.CreatedAt = &v
	}
	return out
}

// Clone returns a deep copy of the theme.
func (t Theme) Clone() Theme {
	out := t
	if t.Materials != nil {
		out.Materials = append([]Material(nil), t.Materials...)
	}
	if t.Description != nil {
		v := *t.Description
		out.Description = &v
	}
	return out
}
