package main

import (
	"WayToEarth/internal/repository"
	"WayToEarth/pkg/logger"
)

func main() {
	logger.Init("gen")
	defer logger.Sync()

	repository.RunGenerate()
}
