package navigation

// Item is one entry of the bottom navigation bar.
type Item struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

func (i Item) Active(currentPath string) bool {
	return i.Path == currentPath
}

var (
	baseItems = []Item{
		{Label: "Dashboard", Path: "/", Icon: "home"},
		{Label: "Leaderboard", Path: "/leaderboard", Icon: "trophy"},
		{Label: "Withdraw", Path: "/withdraw", Icon: "wallet"},
	}
	adminItem = Item{Label: "Admin", Path: "/admin", Icon: "user-shield"}
)

// Items returns the navigation for a user. The admin entry is appended
// last and only for admins.
func Items(isAdmin bool) []Item {
	items := make([]Item, 0, len(baseItems)+1)
	items = append(items, baseItems...)
	if isAdmin {
		items = append(items, adminItem)
	}
	return items
}
