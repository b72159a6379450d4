package main

import (
	"log"
	"os"

	"glplayground/internal/vkprobe"

	"github.com/xlab/closer"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vkinfo: ")
	defer closer.Close()

	devices, err := vkprobe.Probe("vkinfo")
	if err != nil {
		closer.Fatalln(err)
	}
	if err := vkprobe.Format(os.Stdout, devices); err != nil {
		closer.Fatalln(err)
	}
}
