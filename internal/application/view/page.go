package view

import "beltempo/internal/domain/entity"

// DashboardTemplate is the template name of the dashboard page
const DashboardTemplate = "dashboard.html"

// Page is the dashboard template input
type Page struct {
	entity.DisplayRecord
	RootPath   string
	StaticPath string
}
