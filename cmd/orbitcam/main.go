// orbitcam renders a wireframe cube as seen from an orbiting camera and
// writes the frame to a WebP file. It exists to exercise the library
// end to end: quaternion orientation, view and projection matrices and the
// batch vertex transforms.
package main

import (
	"flag"
	"image"
	"image/color"
	"os"

	"github.com/HugoSmits86/nativewebp"

	"github.com/spaghettifunk/vecmath"
	"github.com/spaghettifunk/vecmath/internal/logging"
)

var cubeEdges = [][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func cubeCorners() []vecmath.Vector3 {
	corners := make([]vecmath.Vector3, 0, 8)
	for _, x := range []float32{-1, 1} {
		for _, y := range []float32{-1, 1} {
			for _, z := range []float32{-1, 1} {
				corners = append(corners, vecmath.NewVector3(x, y, z))
			}
		}
	}
	return corners
}

func drawLine(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	e := dx - dy
	for {
		if image.Pt(x0, y0).In(img.Rect) {
			img.SetNRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x0 += sx
		}
		if e2 < dx {
			e += dx
			y0 += sy
		}
	}
}

func main() {
	var (
		out      = flag.String("out", "orbitcam.webp", "output WebP path")
		size     = flag.Int("size", 512, "image width and height in pixels")
		yaw      = flag.Float64("yaw", 0.6, "camera yaw in radians")
		pitch    = flag.Float64("pitch", -0.4, "camera pitch in radians")
		distance = flag.Float64("distance", 6, "camera distance from the cube")
		fov      = flag.Float64("fov", float64(vecmath.PiOver4), "vertical field of view in radians")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logging.SetVerbose()
	}

	// Orbit the camera: start behind the cube and rotate the offset by the
	// requested yaw and pitch.
	orientation := vecmath.QuaternionCreateFromYawPitchRoll(float32(*yaw), float32(*pitch), 0)
	cameraPos := vecmath.NewVector3(0, 0, float32(*distance)).TransformQuaternion(orientation)
	logging.Debug("camera at %v", cameraPos)

	view := vecmath.MatrixCreateLookAt(cameraPos, vecmath.NewVector3Zero(), vecmath.NewVector3Up())
	proj, err := vecmath.MatrixCreatePerspectiveFieldOfView(float32(*fov), 1, 0.1, 100)
	if err != nil {
		logging.Fatal("projection setup: %v", err)
	}
	viewProj := view.Mul(proj)

	corners := cubeCorners()
	clip := make([]vecmath.Vector4, len(corners))
	homogeneous := make([]vecmath.Vector4, len(corners))
	for i, c := range corners {
		homogeneous[i] = vecmath.NewVector4FromVector3(c, 1)
	}
	vecmath.Vector4TransformSlice(homogeneous, viewProj, clip)

	// Perspective divide, then map NDC onto the pixel grid.
	half := float32(*size) / 2
	px := make([][2]int, len(clip))
	for i, v := range clip {
		ndc := v.XYZ().DivScalar(v.W)
		px[i] = [2]int{
			int(half + ndc.X*half),
			int(half - ndc.Y*half),
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, *size, *size))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for _, e := range cubeEdges {
		a, b := px[e[0]], px[e[1]]
		drawLine(img, a[0], a[1], b[0], b[1], white)
	}

	f, err := os.Create(*out)
	if err != nil {
		logging.Fatal("create %s: %v", *out, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		logging.Fatal("encode %s: %v", *out, err)
	}
	logging.Info("wrote %s (%dx%d)", *out, *size, *size)
}
