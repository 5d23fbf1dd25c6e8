package main

import "github.com/visitstats/dashboard/cmd/app"

// @title          Visitstats Dashboard API
// @version        1.0.0
// @description    Read-only aggregate statistics over restaurant visits.
// @license.name   MIT License
// @license.url    https://opensource.org/licenses/MIT
// @BasePath       /
func main() {
	app.Run()
}
