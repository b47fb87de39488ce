package main

import "marketplace-chat/config"

func main() {
	config.RunServer()
}
