package main

import (
	"certverify.io/infrastructure"
	"certverify.io/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
