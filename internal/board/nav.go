package board

import "github.com/mesh-intelligence/adboard/pkg/types"

// DefaultNav returns the dashboard side navigation.
func DefaultNav() []types.NavItem {
	return []types.NavItem{
		{Title: "Dashboard", Path: "/", Icon: "ic-analytics"},
		{Title: "Users", Path: "/user", Icon: "ic-user"},
		{Title: "Ads Configuration", Path: "/ads", Icon: "ic-cart", Info: "+3"},
		{Title: "App Configurations", Path: "/blog", Icon: "ic-blog"},
		{Title: "Modules Status", Path: "/sign-in", Icon: "ic-lock"},
		{Title: "Subscriptions", Path: "/404", Icon: "ic-lock"},
	}
}

// IconPath returns the asset path of a navigation icon.
func IconPath(icon string) string {
	return "/assets/icons/navbar/" + icon + ".svg"
}
