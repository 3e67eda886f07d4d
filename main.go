package main

import "github.com/Alijeyrad/agrolytics_backend/cmd"

func main() {
	cmd.Execute()
}
