package main

import "github.com/lvnb04/cloudtrack/cmd/ctrack/cmd"

func main() {
	cmd.Execute()
}
