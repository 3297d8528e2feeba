// Command raytrace renders a YAML scene file to a PPM or PNG image.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/msealion/raytracer/internal/render"
	"github.com/msealion/raytracer/internal/sceneio"
)

func main() {
	scenePath := flag.String("scene", "scene.yaml", "path to a YAML scene file")
	configPath := flag.String("config", "", "path to a TOML render config (optional)")
	flag.Parse()

	conf := sceneio.DefaultRenderConfig()
	if *configPath != "" {
		var err error
		conf, err = sceneio.LoadRenderConfig(*configPath)
		if err != nil {
			log.Fatalf("raytrace: %v", err)
		}
	}

	sceneFile, err := os.Open(*scenePath)
	if err != nil {
		log.Fatalf("raytrace: opening scene: %v", err)
	}
	defer sceneFile.Close()

	doc, err := sceneio.LoadScene(sceneFile)
	if err != nil {
		log.Fatalf("raytrace: %v", err)
	}

	world, err := doc.BuildWorld()
	if err != nil {
		log.Fatalf("raytrace: building world: %v", err)
	}
	cam := doc.BuildCamera()

	var gen render.RayGenerator = render.Native{}
	if conf.AntialiasGrid > 1 {
		gen = render.Agss{Samples: conf.AntialiasGrid}
	}

	log.Printf("raytrace: rendering %dx%d to %s", cam.HSize, cam.VSize, conf.OutputPath)
	canvas := render.Render(world, cam, gen, conf.MaxReflections)

	if err := writeCanvas(canvas, conf); err != nil {
		log.Fatalf("raytrace: writing output: %v", err)
	}
}

func writeCanvas(canvas *render.Canvas, conf sceneio.RenderConfig) error {
	if conf.OutputFormat == "ppm" {
		f, err := os.Create(conf.OutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return canvas.WritePPM(f)
	}
	return canvas.SavePNG(conf.OutputPath)
}
