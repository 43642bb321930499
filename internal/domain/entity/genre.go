package entity

// The selectable genre catalog, mapped to the catalog provider's genre ids.
// Fixed set; the preference editor and the recommendation engine both read it.
var genreCatalog = []struct {
	Name string
	ID   int
}{
	{"Action", 28},
	{"Comedy", 35},
	{"Drama", 18},
	{"Fantasy", 14},
	{"Horror", 27},
	{"Mystery", 9648},
	{"Romance", 10749},
	{"Science Fiction", 878},
	{"Thriller", 53},
	{"Western", 37},
}

var (
	genreIDByName = make(map[string]int, len(genreCatalog))
	genreNameByID = make(map[int]string, len(genreCatalog))
)

func init() {
	for _, g := range genreCatalog {
		genreIDByName[g.Name] = g.ID
		genreNameByID[g.ID] = g.Name
	}
}

func GenreID(name string) (int, bool) {
	id, ok := genreIDByName[name]
	return id, ok
}

func GenreName(id int) (string, bool) {
	name, ok := genreNameByID[id]
	return name, ok
}

// GenreIDsFor maps genre names to provider ids, skipping empty and unknown
// names. An empty result means the caller should not query the provider.
func GenreIDsFor(names []string) []int {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		if id, ok := genreIDByName[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// GenreNames returns the catalog names in display order.
func GenreNames() []string {
	names := make([]string, len(genreCatalog))
	for i, g := range genreCatalog {
		names[i] = g.Name
	}
	return names
}
