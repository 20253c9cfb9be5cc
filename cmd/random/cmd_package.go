package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Yandex-Practicum/ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/ftracker/internal/random"
)

var packageFlags = flag.NewFlagSet("package", flag.ExitOnError)

var (
	flagPackageType  = packageFlags.String("type", "", "workout code, one of RUN, WLK, SWM; random when empty")
	flagPackageCount = packageFlags.Int("n", 1, "number of packages")
	flagPackageSeed  = packageFlags.Int64("seed", 0, "deterministic seed, crypto random when zero")
)

var packageCmd = cmd{
	name:      "package",
	shortHelp: "generates random sensor packages, one per line",
	do:        generatePackages,
	flags:     packageFlags,
}

func generatePackages() {
	if *flagPackageSeed != 0 {
		random.Seed(*flagPackageSeed)
	}

	generate := random.Package
	switch *flagPackageType {
	case "":
	case ftracker.CodeRunning:
		generate = random.Running
	case ftracker.CodeWalking:
		generate = random.SportsWalking
	case ftracker.CodeSwimming:
		generate = random.Swimming
	default:
		fatalf("unknown workout code %q, expected one of %s", *flagPackageType, strings.Join(ftracker.Codes(), ", "))
	}

	for i := 0; i < *flagPackageCount; i++ {
		fmt.Println(formatPackage(generate()))
	}
}

func formatPackage(p ftracker.Package) string {
	values := make([]string, 0, len(p.Data))
	for _, v := range p.Data {
		values = append(values, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return p.Code + " " + strings.Join(values, " ")
}
