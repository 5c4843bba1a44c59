// cmd/rescore/main.go
package main

import (
	"rescore/internal/app"
	"rescore/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
