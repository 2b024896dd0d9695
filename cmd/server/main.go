package main

import "century-cleaning/go_backend/internal/app"

func main() {
	app.Run()
}
