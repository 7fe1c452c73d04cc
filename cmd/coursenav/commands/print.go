package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ncobase/coursenav/net/resp"
	"github.com/ncobase/coursenav/paging"
	"github.com/ncobase/coursenav/router"
	"github.com/ncobase/coursenav/structs"
	"github.com/ncobase/coursenav/types"
)

// printer renders results as text or JSON
type printer struct {
	w    io.Writer
	json bool
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) user(u *structs.User) error {
	if p.json {
		return p.encode(u)
	}
	if u == nil {
		_, err := fmt.Fprintln(p.w, "not signed in")
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s <%s> (%s)\n", u.FullName(), u.Email, u.Role)
	return err
}

func (p *printer) page(page *paging.Page[structs.Course]) error {
	if p.json {
		return p.encode(page)
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOWNER\tTHEMES")
	for _, c := range page.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", c.ID, c.Name, c.Owner.FullName(), len(c.Themes))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, "%d of %d course(s)\n", len(page.Results), page.Count)
	return err
}

func (p *printer) course(c *structs.Course) error {
	if p.json {
		return p.encode(c)
	}
	fmt.Fprintf(p.w, "%d  %s\n", c.ID, c.Name)
	if owner := c.Owner.FullName(); owner != "" {
		fmt.Fprintf(p.w, "    owner: %s\n", owner)
	}
	for _, t := range c.Themes {
		fmt.Fprintf(p.w, "  %d  %s\n", t.ID, t.Name)
		if d := types.ToValue(t.Description); d != "" {
			fmt.Fprintf(p.w, "        %s\n", d)
		}
		for _, m := range t.Materials {
			fmt.Fprintf(p.w, "      %d  %s  %s\n", m.ID, m.Name, m.File)
		}
	}
	return nil
}

// selection is the derived state of the course store
type selection struct {
	Course   *structs.Course   `json:"course"`
	Theme    *structs.Theme    `json:"theme"`
	Material *structs.Material `json:"material"`
}

func (p *printer) selection(s selection) error {
	if p.json {
		return p.encode(s)
	}
	var parts []string
	if s.Course != nil {
		parts = append(parts, fmt.Sprintf("course %d %q", s.Course.ID, s.Course.Name))
	}
	if s.Theme != nil {
		parts = append(parts, fmt.Sprintf("theme %d %q", s.Theme.ID, s.Theme.Name))
	}
	if s.Material != nil {
		parts = append(parts, fmt.Sprintf("material %d %q (%s)", s.Material.ID, s.Material.Name, s.Material.File))
	}
	if len(parts) == 0 {
		_, err := fmt.Fprintln(p.w, "nothing selected")
		return err
	}
	_, err := fmt.Fprintln(p.w, strings.Join(parts, " > "))
	return err
}

func (p *printer) location(loc router.Location) error {
	if p.json {
		return p.encode(loc)
	}
	_, err := fmt.Fprintf(p.w, "%s (%s)\n", loc.Path, loc.Name)
	return err
}

// apiError converts error data into a command error
func apiError(e *resp.ErrorData) error {
	return errors.New(e.Detail())
}
