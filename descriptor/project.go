package descriptor

// PrimaryColor is the project accent (Tailwind orange-500).
const PrimaryColor = "#f97316"

// Project returns this project's descriptor. It is the one place the
// project configuration is declared; every call returns a fresh value.
func Project() *Descriptor {
	return New(
		[]string{
			"./templates/**/*.html",
			"./**/templates/**/*.html",
			"./static/src/**/*.{js,ts}",
		},
		Extension{
			"colors": {
				"primary": PrimaryColor,
			},
		},
		nil,
	)
}
