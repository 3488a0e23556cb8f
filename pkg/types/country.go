package types

// Country mirrors the subset of REST Countries v3.1 fields the frontend
// consumes (name, flag, capital, population, region, languages).
type Country struct {
	Name       CountryName       `json:"name"`
	CCA2       string            `json:"cca2"`
	CCA3       string            `json:"cca3"`
	Flag       string            `json:"flag"`
	Capital    []string          `json:"capital"`
	Population int64             `json:"population"`
	Region     string            `json:"region"`
	Languages  map[string]string `json:"languages"`
}

type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}
