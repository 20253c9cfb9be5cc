package main

import (
	"fmt"

	"github.com/Yandex-Practicum/ftracker/internal/random"
)

var codeCmd = cmd{
	name:      "unknown-code",
	shortHelp: "generates random workout code the tracker does not know",
	do:        generateUnknownCode,
}

func generateUnknownCode() {
	fmt.Print(random.UnknownCode())
}
