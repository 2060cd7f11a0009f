// juliaray - Terminal 3D Model Viewer
// View glTF/GLB models (or a procedural primitive) in your terminal.
//
// Controls:
//
//	Mouse drag  - Rotate model (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Reset rotation and zoom
//	T           - Toggle texture on/off
//	?           - Toggle HUD overlay (FPS, filename, poly count)
//	+/-         - Adjust zoom
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/juliaray/raster3d/pkg/math3d"
	"github.com/juliaray/raster3d/pkg/models"
	"github.com/juliaray/raster3d/pkg/raster"
	"github.com/juliaray/raster3d/pkg/scene"
)

var (
	texturePath = flag.String("texture", "", "Path to texture image (PNG/JPEG/BMP)")
	targetFPS   = flag.Int("fps", 60, "Target FPS")
	bgColor     = flag.String("bg", "30,30,40", "Background color (R,G,B)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "juliaray - Terminal 3D Model Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: juliaray [options] [model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "If no model is given, a procedural cube is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var modelPath string
	if flag.NArg() > 0 {
		modelPath = flag.Arg(0)
	}

	if err := run(modelPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadMesh(path string) (*models.Mesh, image.Image, error) {
	if path == "" {
		return models.NewCube(2), nil, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".glb", ".gltf":
		mesh, embedded, err := models.LoadGLBWithTexture(path)
		if err != nil {
			return nil, nil, fmt.Errorf("load model: %w", err)
		}
		return mesh, embedded, nil
	default:
		return nil, nil, fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}
}

func run(modelPath string) error {
	var bgR, bgG, bgB uint8 = 30, 30, 40
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)
	bg := raster.RGB(bgR, bgG, bgB)

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h") // any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // SGR extended mouse mode

	termRenderer := newTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.framebufferSize()
	renderer := raster.NewRenderer(fbWidth, fbHeight)

	cam := scene.NewCamera()
	cam.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
	cameraZ := 5.0
	cam.SetPosition(math3d.V3(0, 0, cameraZ))
	cam.LookAt(math3d.V3(0, 0, 0))

	mesh, embeddedImg, err := loadMesh(modelPath)
	if err != nil {
		return err
	}

	var texture raster.Sampler
	if *texturePath != "" {
		tex, err := raster.LoadImageTexture(*texturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not load texture: %v\n", err)
		} else {
			texture = tex
		}
	}
	if texture == nil && embeddedImg != nil {
		texture = raster.NewImageTexture(embeddedImg)
	}
	if texture == nil {
		texture = raster.CheckerTexture{Cells: 8, A: raster.RGB(200, 200, 200), B: raster.RGB(100, 100, 100)}
	}

	mesh.CalculateBounds()
	center := mesh.Center()
	size := mesh.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim > 0 {
		s := 2.0 / maxDim
		mesh.Transform(math3d.Scale(math3d.V3(s, s, s)).Mul(math3d.Translate(center.Scale(-1))))
	}

	displayName := "cube"
	if modelPath != "" {
		displayName = filepath.Base(modelPath)
	}
	fmt.Printf("Loaded: %s (%d vertices, %d triangles)\n", displayName, mesh.VertexCount(), mesh.TriangleCount())

	rotation := newRotationState(*targetFPS)
	textureEnabled := true
	showHUD := true
	fps := 0.0
	fpsFrames := 0
	fpsTime := time.Now()

	sc := scene.NewScene(cam)
	worldScene := sc

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var inputTorque struct{ pitch, yaw, roll float64 }
	const torqueStrength = 3.0

	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = newTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.framebufferSize()
				renderer = raster.NewRenderer(fbWidth, fbHeight)
				cam.SetAspectRatio(float64(fbWidth) / float64(fbHeight))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("r"):
					rotation.Reset()
					cameraZ = 5.0
					cam.SetPosition(math3d.V3(0, 0, cameraZ))
				case ev.MatchString("w", "up"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("q"):
					inputTorque.roll = -torqueStrength
				case ev.MatchString("e"):
					inputTorque.roll = torqueStrength
				case ev.MatchString("space"):
					rotation.ApplyImpulse(
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
					)
				case ev.MatchString("+", "="):
					cameraZ = math.Max(1, cameraZ-0.5)
					cam.SetPosition(math3d.V3(0, 0, cameraZ))
				case ev.MatchString("-", "_"):
					cameraZ = math.Min(20, cameraZ+0.5)
					cam.SetPosition(math3d.V3(0, 0, cameraZ))
				case ev.MatchString("t"):
					textureEnabled = !textureEnabled
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					showHUD = !showHUD
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputTorque.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputTorque.yaw = 0
				case ev.MatchString("q"), ev.MatchString("e"):
					inputTorque.roll = 0
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					rotation.ApplyImpulse(float64(dy)*0.03, float64(dx)*0.03, 0)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					cameraZ = math.Max(1, cameraZ-0.5)
				case uv.MouseWheelDown:
					cameraZ = math.Min(20, cameraZ+0.5)
				}
				cam.SetPosition(math3d.V3(0, 0, cameraZ))
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		rotation.ApplyImpulse(inputTorque.pitch*dt, inputTorque.yaw*dt, inputTorque.roll*dt)
		inputTorque.pitch *= 0.9
		inputTorque.yaw *= 0.9
		inputTorque.roll *= 0.9
		rotation.Update()

		transform := math3d.RotateX(rotation.Pitch.Position).
			Mul(math3d.RotateY(rotation.Yaw.Position)).
			Mul(math3d.RotateZ(rotation.Roll.Position))

		renderer.FB.Clear()
		fillBackground(renderer.FB, bg)

		activeTexture := texture
		if !textureEnabled {
			activeTexture = raster.SolidTexture{Color: raster.RGB(200, 200, 200)}
		}

		worldScene.Instances = worldScene.Instances[:0]
		worldScene.Add(scene.Instance{Mesh: mesh, Transform: transform, Texture: activeTexture})
		worldScene.Draw(renderer)

		termRenderer.render(renderer.FB)
		if err := termRenderer.flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		fpsFrames++
		if elapsed := time.Since(fpsTime); elapsed >= time.Second {
			fps = float64(fpsFrames) / elapsed.Seconds()
			fpsFrames = 0
			fpsTime = time.Now()
		}
		if showHUD {
			fmt.Fprintf(os.Stdout, "\x1b[1;1H\x1b[2K %.0f FPS  %s  %d polys", fps, displayName, mesh.TriangleCount())
		}

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

func fillBackground(fb *raster.Framebuffer, bg raster.Color) {
	half := fb.Width / 2
	halfH := fb.Height / 2
	for y := -halfH; y < halfH; y++ {
		for x := -half; x < half; x++ {
			fb.TestAndWrite(x, y, raster.DefaultDepthSentinel+1, bg)
		}
	}
}
