// oxy-lumen - 3D light editor
// Place and aim up to four lights around a central object and watch the shading update.
//
// Controls:
//
//	Left drag        - Orbit the camera
//	Ctrl + left drag - Roll the camera
//	Right drag       - Rotate the light under the cursor
//	Scroll           - Zoom
//	Double click     - Open or close a light's panel
//	N                - Add a light
//	- / =            - Shrink or grow the central object
//	V                - Cycle the central object color
//	G                - Toggle the grid and axis gizmo
//	L                - Reload the central object from disk
//	H                - Print the key bindings
//	Esc              - Quit
//
// These keys edit every light whose panel is open:
//
//	Delete           - Remove the light
//	K                - Switch between spot and point
//	O                - Toggle the light on or off
//	Arrows           - Move the light along x and y
//	PgUp / PgDn      - Move the light along z
//	W / S            - Tilt the light about x
//	A / D            - Tilt the light about z
//	R                - Reset the light's rotation
//	[ / ]            - Narrow or widen the spot cone
//	, / .            - Lower or raise linear attenuation
//	; / '            - Lower or raise quadratic attenuation
//	C                - Cycle the light color
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Carmen-Shannon/oxy-lumen/engine"
	"github.com/Carmen-Shannon/oxy-lumen/engine/config"
	"github.com/Carmen-Shannon/oxy-lumen/engine/loader"
	"github.com/spf13/cobra"
)

func init() {
	// GLFW and the WebGPU surface must stay on the main thread.
	runtime.LockOSThread()
}

var (
	configPath  string
	width       int
	height      int
	decorations bool
	profile     bool
	fpsLimit    float64
)

func main() {
	root := &cobra.Command{
		Use:   "oxy-lumen",
		Short: "3D light editor",
		Long: `oxy-lumen - 3D light editor

Place up to four spot or point lights around a central object, aim them and
tune their color, cone and attenuation while the object is shaded live.`,
		SilenceUsage: true,
	}

	runCmd := &cobra.Command{
		Use:   "run [object.obj|object.glb]",
		Short: "Open the editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			object := ""
			if len(args) == 1 {
				object = args[0]
			}
			return run(cmd, object)
		},
	}
	runCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML configuration")
	runCmd.Flags().IntVar(&width, "width", 0, "Window width, overrides the configuration")
	runCmd.Flags().IntVar(&height, "height", 0, "Window height, overrides the configuration")
	runCmd.Flags().BoolVar(&decorations, "decorations", true, "Draw the grid and axis gizmo")
	runCmd.Flags().BoolVar(&profile, "profile", false, "Log frame statistics every second")
	runCmd.Flags().Float64Var(&fpsLimit, "fps", 0, "Frame rate cap, 0 for uncapped")

	infoCmd := &cobra.Command{
		Use:   "info <mesh.obj|mesh.glb>",
		Short: "Display mesh information",
		Long:  "Display vertex, triangle and bounds information about a mesh file as the editor would load it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the editor configuration",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(initCmd)

	root.AddCommand(runCmd, infoCmd, configCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, object string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("oxy-lumen: %v, using defaults", err)
	}
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
	if cmd.Flags().Changed("decorations") {
		cfg.Scene.Decorations = decorations
	}

	var opts []engine.EngineBuilderOption
	if object != "" {
		opts = append(opts, engine.WithFocalPath(object))
	}
	opts = append(opts, engine.WithProfiling(profile), engine.WithRenderFrameLimit(fpsLimit))

	e, err := engine.NewFromConfig(cfg, opts...)
	if err != nil {
		return err
	}
	defer e.Release()

	if err := e.Run(); err != nil {
		log.Printf("oxy-lumen: central object: %v", err)
	}
	return nil
}

func runInfo(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	m, err := loader.NewLoader(loader.WithCaching(false)).Load(path)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}

	lo, hi := m.Bounds()
	size := hi.Sub(lo)
	center := lo.Add(hi).Mul(0.5)
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	fmt.Printf("File:       %s\n", filepath.Base(path))
	fmt.Printf("Format:     %s\n", strings.ToUpper(ext))
	fmt.Printf("Size:       %.2f KB\n", float64(stat.Size())/1024)
	fmt.Println()
	fmt.Printf("Vertices:   %d\n", m.VertexCount())
	fmt.Printf("Triangles:  %d\n", m.IndexCount()/3)
	fmt.Printf("Normals:    %d\n", len(m.Normals())/3)
	fmt.Println()
	fmt.Printf("Bounds Min: (%.3f, %.3f, %.3f)\n", lo.X(), lo.Y(), lo.Z())
	fmt.Printf("Bounds Max: (%.3f, %.3f, %.3f)\n", hi.X(), hi.Y(), hi.Z())
	fmt.Printf("Dimensions: %.3f x %.3f x %.3f\n", size.X(), size.Y(), size.Z())
	fmt.Printf("Center:     (%.3f, %.3f, %.3f)\n", center.X(), center.Y(), center.Z())
	fmt.Printf("Radius:     %.3f\n", m.BoundingRadius())
	return nil
}
