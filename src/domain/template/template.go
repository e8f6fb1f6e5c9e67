package template

// Template is a read-only message body seeded at startup. Placeholders such as
// {time} are left for the client to fill in.
type Template struct {
	ID      int
	Name    string
	Content string
}
