package main

import (
	chatrooms "github.com/MarcSastreViB/chatrooms/app"
)

func main() {
	app := chatrooms.New(nil, nil)
	app.Start()
}
