package entity

// Categories is the fixed set of valid movie category tags. A movie carries
// between MinCategories and MaxCategories of them.
var Categories = []string{
	"Action",
	"Adventure",
	"Animation",
	"Comedy",
	"Crime",
	"Documentary",
	"Drama",
	"Fantasy",
	"Horror",
	"Mystery",
	"Romance",
	"Sci-Fi",
	"Thriller",
}

const (
	MinCategories = 1
	MaxCategories = 4
)

var categorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		set[c] = struct{}{}
	}
	return set
}()

func IsValidCategory(category string) bool {
	_, ok := categorySet[category]
	return ok
}

// ValidCategories reports whether the slice satisfies both the count bounds
// and registry membership.
func ValidCategories(categories []string) bool {
	if len(categories) < MinCategories || len(categories) > MaxCategories {
		return false
	}
	for _, c := range categories {
		if !IsValidCategory(c) {
			return false
		}
	}
	return true
}
