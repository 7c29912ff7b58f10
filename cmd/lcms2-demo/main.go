package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/yzigangirova/lcms2-go"
)

var (
	srcProfilePath = flag.String("src", "", "source ICC profile (default: built-in sRGB)")
	dstProfilePath = flag.String("dst", "", "destination ICC profile (default: built-in sRGB)")
	cpuProfile     = flag.Bool("cpuprofile", false, "write a CPU profile for the run")
	verbose        = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	must(exampleRGB8Identity())
	must(exampleLab16ToRGB8())
	must(exampleSharedTransform())
	must(exampleGrayGamma())
	fmt.Println("\nAll examples finished.")
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func openPair() (src, dst *lcms2.Profile, err error) {
	if *srcProfilePath != "" {
		src, err = lcms2.ProfileFromFile(*srcProfilePath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		src = lcms2.SRGBProfile()
	}
	if *dstProfilePath != "" {
		dst, err = lcms2.ProfileFromFile(*dstProfilePath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		dst = lcms2.SRGBProfile()
	}
	return src, dst, nil
}

type rgb8 struct{ R, G, B uint8 }

// -------------------------------------
// Example 1: RGB8 -> RGB8, typed pixels
// -------------------------------------
func exampleRGB8Identity() error {
	fmt.Println("\n[Example] RGB8 -> RGB8")

	src, dst, err := openPair()
	if err != nil {
		return err
	}
	defer src.Close()
	defer dst.Close()

	fmt.Printf("  src: %s (%s)\n", src.Description(), src.ColorSpace())
	fmt.Printf("  dst: %s (%s)\n", dst.Description(), dst.ColorSpace())

	xform, err := lcms2.NewTransform(src, lcms2.RGB_8, dst, lcms2.RGB_8, lcms2.IntentPerceptual, 0)
	if err != nil {
		return err
	}
	defer xform.Close()

	in := []rgb8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {128, 128, 128}}
	out := make([]rgb8, len(in))
	if err := lcms2.TransformPixels(xform, in, out); err != nil {
		return err
	}
	for i := range in {
		fmt.Printf("  %v -> %v\n", in[i], out[i])
	}
	return nil
}

// ------------------------------------------
// Example 2: Lab16 -> RGB8 via a Lab profile
// ------------------------------------------
func exampleLab16ToRGB8() error {
	fmt.Println("\n[Example] Lab16 -> RGB8")

	lab, err := lcms2.Lab4Profile(lcms2.D50xyY())
	if err != nil {
		return err
	}
	defer lab.Close()
	rgb := lcms2.SRGBProfile()
	defer rgb.Close()

	xform, err := lcms2.NewTransform(lab, lcms2.Lab_16, rgb, lcms2.RGB_8,
		lcms2.IntentRelativeColorimetric, lcms2.FlagBlackPointCompensation)
	if err != nil {
		return err
	}
	defer xform.Close()

	type lab16 struct{ L, A, B uint16 }
	in := []lab16{
		{0xFFFF, 0x8080, 0x8080}, // white
		{0x8000, 0x8080, 0x8080}, // mid gray
		{0x0000, 0x8080, 0x8080}, // black
	}
	out := make([]rgb8, len(in))
	if err := lcms2.TransformPixels(xform, in, out); err != nil {
		return err
	}
	for i := range in {
		fmt.Printf("  L*=%5d -> %v\n", in[i].L, out[i])
	}
	return nil
}

// --------------------------------------------------
// Example 3: one SharedTransform, many goroutines
// --------------------------------------------------
func exampleSharedTransform() error {
	fmt.Println("\n[Example] shared transform across goroutines")

	src := lcms2.SRGBProfile()
	defer src.Close()
	dst := lcms2.SRGBProfile()
	defer dst.Close()

	xform, err := lcms2.NewSharedTransform(src, lcms2.RGB_8, dst, lcms2.RGB_8, lcms2.IntentPerceptual, 0)
	if err != nil {
		return err
	}
	defer xform.Close()

	workers := runtime.GOMAXPROCS(0)
	const pixelsPerWorker = 4096

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			in := make([]rgb8, pixelsPerWorker)
			for i := range in {
				in[i] = rgb8{uint8(i), uint8(i >> 4), uint8(w)}
			}
			out := make([]rgb8, len(in))
			errs[w] = lcms2.TransformPixels(xform, in, out)
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	fmt.Printf("  %d workers x %d pixels done\n", workers, pixelsPerWorker)
	return nil
}

// ----------------------------------------------
// Example 4: gray profile built from a gamma 2.2
// ----------------------------------------------
func exampleGrayGamma() error {
	fmt.Println("\n[Example] gray gamma 2.2 -> sRGB")

	curve, err := lcms2.NewToneCurve(2.2)
	if err != nil {
		return err
	}
	defer curve.Close()

	gray, err := lcms2.GrayProfile(lcms2.D50xyY(), curve)
	if err != nil {
		return err
	}
	defer gray.Close()
	rgb := lcms2.SRGBProfile()
	defer rgb.Close()

	xform, err := lcms2.NewTransform(gray, lcms2.GRAY_8, rgb, lcms2.RGB_8, lcms2.IntentPerceptual, 0)
	if err != nil {
		return err
	}
	defer xform.Close()

	in := []byte{0, 64, 128, 192, 255}
	out := make([]rgb8, len(in))
	if err := lcms2.TransformPixels(xform, in, out); err != nil {
		return err
	}
	for i := range in {
		fmt.Printf("  gray %3d -> %v\n", in[i], out[i])
	}
	return nil
}
