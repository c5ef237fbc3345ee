package main

import "riskscreen_backend/internal/app"

func main() {
	app.Run()
}
