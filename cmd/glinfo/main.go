package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"glplayground/internal/app"
	"glplayground/internal/compute"
	"glplayground/internal/config"
	"glplayground/internal/graphics"
	"glplayground/internal/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	lc := app.Start("glinfo")

	if err := window.Init(); err != nil {
		lc.Fatal(err)
	}
	lc.Defer(window.Terminate)

	if _, err := window.New(config.Headless("glinfo")); err != nil {
		lc.Fatal(err)
	}
	// Both bindings resolve against the same context
	if err := graphics.Init(); err != nil {
		lc.Fatal(err)
	}
	if err := compute.Init(); err != nil {
		lc.Fatal(err)
	}

	info := graphics.QueryInfo()
	limits := compute.QueryLimits()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "vendor\t%s\n", info.Vendor)
	fmt.Fprintf(tw, "renderer\t%s\n", info.Renderer)
	fmt.Fprintf(tw, "version\t%s\n", info.Version)
	fmt.Fprintf(tw, "glsl\t%s\n", info.GLSL)
	fmt.Fprintf(tw, "max work group count\t%d x %d x %d\n", limits.WorkGroupCount[0], limits.WorkGroupCount[1], limits.WorkGroupCount[2])
	fmt.Fprintf(tw, "max work group size\t%d x %d x %d\n", limits.WorkGroupSize[0], limits.WorkGroupSize[1], limits.WorkGroupSize[2])
	fmt.Fprintf(tw, "max invocations\t%d\n", limits.MaxInvocations)
	fmt.Fprintf(tw, "shared memory\t%d bytes\n", limits.SharedMemory)
	fmt.Fprintf(tw, "program binary formats\t%d %v\n", len(limits.ProgramBinaries), limits.ProgramBinaries)
	fmt.Fprintf(tw, "shader binary formats\t%d %v\n", len(limits.ShaderBinaries), limits.ShaderBinaries)
	if err := tw.Flush(); err != nil {
		lc.Fatal(err)
	}
	lc.Exit()
}
