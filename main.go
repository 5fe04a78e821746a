package main

import "scaletrailhq/scaletrail/cmd"

func main() {
	cmd.Execute()
}
