package playlearn

// pageInfo is the head metadata of one navigation destination.
type pageInfo struct {
	Title       string
	Description string
}

// pages maps nav destination names to their head metadata. Titles are
// suffixed with the site name at render time; the home page uses the site
// title as is.
var pages = map[string]pageInfo{
	"home": {
		Description: "A joyful preschool in Dhaka where children learn through play, creativity and care.",
	},
	"program": {
		Title:       "Our Program",
		Description: "Regular sessions, learning stages, skill boosters, after-school activities and therapy services.",
	},
	"about": {
		Title:       "About Us",
		Description: "Meet the founders and the team behind Little Wonders, and the values that guide us.",
	},
	"contact": {
		Title:       "Contact",
		Description: "Visit our Gulshan and Uttara branches, call us or send an email.",
	},
}
