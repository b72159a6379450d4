package main

import (
	"fmt"
	"runtime"

	"glplayground/internal/app"
	"glplayground/internal/compute"
	"glplayground/internal/config"
	"glplayground/internal/kernel"
	"glplayground/internal/window"
)

const tolerance = 1e-5

func init() {
	runtime.LockOSThread()
}

func main() {
	lc := app.Start("feedback")

	if err := window.Init(); err != nil {
		lc.Fatal(err)
	}
	lc.Defer(window.Terminate)

	if _, err := window.New(config.Headless("feedback")); err != nil {
		lc.Fatal(err)
	}
	if err := compute.Init(); err != nil {
		lc.Fatal(err)
	}

	input := kernel.Range(1, 10)
	out, err := compute.Feedback(kernel.SqrtSource, kernel.SqrtInput, kernel.SqrtOutput, input)
	if err != nil {
		lc.Fatal(err)
	}
	for _, v := range out {
		fmt.Printf("%f\n", v)
	}
	if err := kernel.VerifySqrt(input, out, tolerance); err != nil {
		lc.Fatal(err)
	}
	lc.Exit()
}
