// @title           YaadJobs API
// @version         1.0
// @description     Job marketplace API for Jamaica with business verification.
// @host            localhost:4000
// @BasePath        /

package main

import "yaadjobs_backend/internal/app"

func main() {
	app.Run()
}
