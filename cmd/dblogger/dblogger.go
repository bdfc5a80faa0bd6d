package main

import "github.com/Egor213/dblogger/internal/app"

func main() {
	app.Execute()
}
