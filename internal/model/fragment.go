package model

import "strconv"

// Fragment is the minimal identity needed to address an entity's detail page.
// The slug or id comes from the summary row's hyperlink, the display name from
// the row's visible label.
//
// Implementations are Circuit, Driver and Team.
type Fragment interface {
	// EntityKind returns the kind whose detail page the fragment addresses.
	EntityKind() Kind

	// InternalName returns the slug used in URLs (e.g. "nino-farina").
	InternalName() string

	// Label returns the display name shown on the summary page.
	Label() string

	fragment()
}

// Circuit identifies a grand prix of a season.
type Circuit struct {
	Index       uint16 `json:"index"`
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
}

// EntityKind implements Fragment.
func (c Circuit) EntityKind() Kind { return KindRace }

// InternalName implements Fragment.
func (c Circuit) InternalName() string { return c.Slug }

// Label implements Fragment.
func (c Circuit) Label() string { return c.DisplayName }

// String returns "100/italy (Italy)".
func (c Circuit) String() string {
	return strconv.FormatUint(uint64(c.Index), 10) + "/" + c.Slug + " (" + c.DisplayName + ")"
}

func (Circuit) fragment() {}

// Driver identifies a driver of a season.
type Driver struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
}

// EntityKind implements Fragment.
func (d Driver) EntityKind() Kind { return KindDriver }

// InternalName implements Fragment.
func (d Driver) InternalName() string { return d.Slug }

// Label implements Fragment.
func (d Driver) Label() string { return d.DisplayName }

// String returns "NINFAR01/nino-farina (Nino Farina)".
func (d Driver) String() string {
	return d.ID + "/" + d.Slug + " (" + d.DisplayName + ")"
}

func (Driver) fragment() {}

// Team identifies a constructor of a season.
type Team struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
}

// EntityKind implements Fragment.
func (t Team) EntityKind() Kind { return KindTeam }

// InternalName implements Fragment.
func (t Team) InternalName() string { return t.Slug }

// Label implements Fragment.
func (t Team) Label() string { return t.DisplayName }

// String returns "alfa_romeo_ferrari (Alfa Romeo Ferrari)".
func (t Team) String() string {
	return t.Slug + " (" + t.DisplayName + ")"
}

func (Team) fragment() {}
