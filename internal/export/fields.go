package export

// field is one optional piece of output. Formats describe their layout as an
// ordered []field and render only the present ones.
type field struct {
	present bool
	render  func() string
}

func always(render func() string) field {
	return field{present: true, render: render}
}

func when(present bool, render func() string) field {
	return field{present: present, render: render}
}

// renderFields renders the present fields in order.
func renderFields(fields []field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.present {
			out = append(out, f.render())
		}
	}
	return out
}
