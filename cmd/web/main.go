package main

import (
	"cityinbox_backend/internal/app"
)

func main() {
	app.Run()
}
