package main

import "github.com/perihassanzadeh/improve365/cmd/improve365"

func main() {
	improve365.Execute()
}
