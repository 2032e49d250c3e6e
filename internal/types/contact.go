package types

// ContactInfo holds contact data extracted from the top of a resume. It is
// built incrementally by scanning multiple candidate regions; the first
// non-empty match per field wins.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// IsEmpty reports whether no field was populated.
func (c *ContactInfo) IsEmpty() bool {
	return c.Name == "" && c.Email == "" && c.Phone == "" && c.Location == "" &&
		c.LinkedIn == "" && c.GitHub == "" && c.Website == ""
}
