package main

import "github.com/trafficlab/feedscore/cmd"

func main() {
	cmd.Execute()
}
