// Package main provides the holography toolkit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/DanLovesOrange/holography/backend/webgpu"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("holoprop %s\n", version)
			return
		case "probe":
			if webgpu.IsAvailable() {
				gpu, err := webgpu.New()
				if err != nil {
					fmt.Println("accelerator: adapter present but device init failed; host backend will be used")
					return
				}
				defer gpu.Release()
				fmt.Printf("accelerator: %s\n", gpu.Name())
			} else {
				fmt.Println("accelerator: none (host backend will be used)")
			}
			return
		}
	}

	fmt.Println("holoprop - Fresnel propagation toolkit")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  probe      Report accelerator availability")
}
