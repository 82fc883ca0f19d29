package http

// redirect records the last navigation a view asked for; the handler turns it into a 303.
type redirect struct {
	path string
}

func (r *redirect) Navigate(path string) {
	r.path = path
}

func (r *redirect) requested() bool {
	return r.path != ""
}
