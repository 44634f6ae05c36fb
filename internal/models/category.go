package models

// Category is one member of the fixed expense category enumeration.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryStationery    Category = "stationery"
	CategoryOuting        Category = "outing"
	CategoryTransport     Category = "transport"
	CategoryFees          Category = "fees"
	CategoryHeart         Category = "heart"
	CategoryClothing      Category = "clothing"
	CategoryGroceries     Category = "groceries"
	CategoryEntertainment Category = "entertainment"
	CategoryOthers        Category = "others"
)

// Categories lists the enumeration in declaration order.
var Categories = []Category{
	CategoryFood,
	CategoryStationery,
	CategoryOuting,
	CategoryTransport,
	CategoryFees,
	CategoryHeart,
	CategoryClothing,
	CategoryGroceries,
	CategoryEntertainment,
	CategoryOthers,
}

// ParseCategory returns the category named s, if it is part of the enumeration.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func (c Category) String() string {
	return string(c)
}
