package category

// All is the fixed set of marketplace categories shared by job and talent
// listings.
var All = []string{
	"Web Development",
	"Mobile Development",
	"UI/UX Design",
	"Graphic Design",
	"Digital Marketing",
	"Content Writing",
	"Video Editing",
	"Photography",
	"Other",
}

// Valid reports whether s is one of the known categories.
func Valid(s string) bool {
	for _, c := range All {
		if c == s {
			return true
		}
	}
	return false
}
