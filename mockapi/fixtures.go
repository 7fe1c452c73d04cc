package mockapi

import (
	"strings"

	"github.com/ncobase/coursenav/paging"
	"github.com/ncobase/coursenav/structs"
	"github.com/ncobase/coursenav/types"
)

// account is a fixture user with its password hash
type account struct {
	user     structs.User
	password string
}

// Seed holds the fixture data served by the backend
type Seed struct {
	Users   []SeedUser
	Courses []structs.Course
}

// SeedUser is a user with a plain text password
type SeedUser struct {
	User     structs.User
	Password string
}

// DefaultSeed returns the built-in fixtures
func DefaultSeed() Seed {
	owner := structs.User{ID: 2, Email: "teacher@example.com", FirstName: "Ada", LastName: "Lovelace", Role: structs.RoleTeacher, CreatedAt: "2024-01-10T09:00:00Z"}
	student := structs.User{ID: 1, Email: "student@example.com", FirstName: "Alan", LastName: "Turing", Role: structs.RoleStudent, CreatedAt: "2024-02-01T09:00:00Z"}
	admin := structs.User{ID: 3, Email: "admin@example.com", FirstName: "Grace", LastName: "Hopper", Role: structs.RoleAdmin, CreatedAt: "2024-01-01T09:00:00Z"}

	return Seed{
		Users: []SeedUser{
			{User: student, Password: "student"},
			{User: owner, Password: "teacher"},
			{User: admin, Password: "admin"},
		},
		Courses: []structs.Course{
			{
				ID: 1, Name: "Programming in Go", Owner: owner, Students: []structs.User{student},
				CreatedAt: types.ToPointer("2024-03-01T10:00:00Z"),
				Themes: []structs.Theme{
					{
						ID: 10, Name: "Basics", Course: 1, Order: 1, CreatedAt: "2024-03-01T10:00:00Z",
						Description: types.ToPointer("Types, functions and packages"),
						Materials: []structs.Material{
							{ID: 100, Name: "Syntax overview", File: "/media/materials/syntax.pdf", Theme: 10, Order: 1},
							{ID: 101, Name: "Exercises", File: "/media/materials/exercises.zip", Theme: 10, Order: 2},
						},
					},
					{
						ID: 11, Name: "Concurrency", Course: 1, Order: 2, CreatedAt: "2024-03-08T10:00:00Z",
						Materials: []structs.Material{
							{ID: 110, Name: "Goroutines", File: "/media/materials/goroutines.mp4", Theme: 11, Order: 1},
						},
					},
				},
			},
			{
				ID: 2, Name: "Databases", Owner: owner, Students: []structs.User{student},
				CreatedAt: types.ToPointer("2024-04-01T10:00:00Z"),
				Themes: []structs.Theme{
					{
						ID: 20, Name: "Relational model", Course: 2, Order: 1, CreatedAt: "2024-04-01T10:00:00Z",
						Materials: []structs.Material{
							{ID: 200, Name: "Normal forms", File: "/media/materials/normal-forms.docx", Theme: 20, Order: 1},
						},
					},
				},
			},
			{
				ID: 3, Name: "Compilers", Owner: owner,
				CreatedAt: types.ToPointer("2024-05-01T10:00:00Z"),
			},
		},
	}
}

// findCourses filters by name and orders by created_at or name
func findCourses(courses []structs.Course, search, ordering string) []structs.Course {
	out := make([]structs.Course, 0, len(courses))
	search = strings.ToLower(strings.TrimSpace(search))
	for _, c := range courses {
		if search == "" || strings.Contains(strings.ToLower(c.Name), search) {
			out = append(out, c)
		}
	}
	sortCourses(out, ordering)
	return out
}

// sortCourses orders courses, newest first by default
func sortCourses(courses []structs.Course, ordering string) {
	if ordering == "" {
		ordering = paging.DefaultOrdering
	}
	types.SortBy(courses, types.ParseOrdering(ordering), func(c structs.Course, field string) (any, bool) {
		switch field {
		case "id":
			return c.ID, true
		case "name":
			return c.Name, true
		case "created_at":
			return types.ToValue(c.CreatedAt), true
		}
		return nil, false
	})
}
