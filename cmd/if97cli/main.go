// Command if97cli is a thin driver over the if97 package: given a state
// point on the command line, it prints the full IAPWS-IF97 property
// set. It does no unit conversion of its own beyond the industrial
// units if97.New defaults to (K, MPa, kJ/kg) — presentation and
// interactive use are out of scope for the library itself.
//
// Grounded on the teacher's cmd/main.go flag layout, translated from
// Celsius/Pascal to the library's native Kelvin/MPa and rewired against
// the if97.Table API in place of the deleted per-region Calculate
// functions.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/somepgs/steamprops"
)

func main() {
	mode := flag.String("mode", "tp", "query mode: tp (from T and p), ph (T from p,h), ps (T from p,s), hs (T,p from h,s)")
	t := flag.Float64("t", 473.15, "temperature, K (mode tp)")
	p := flag.Float64("p", 4.0, "pressure, MPa (mode tp, ph, ps)")
	h := flag.Float64("h", 2000.0, "specific enthalpy, kJ/kg (mode ph, hs)")
	s := flag.Float64("s", 5.0, "specific entropy, kJ/(kg*K) (mode ps, hs)")
	flag.Parse()

	tbl := if97.New()

	switch strings.ToLower(*mode) {
	case "tp":
		props, region, err := tbl.Properties(*t, *p)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("region: %v\n", region)
		printProperties(props)
	case "ph":
		T, err := tbl.TFromPH(*p, *h)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("T = %.6f K\n", T)
	case "ps":
		T, err := tbl.TFromPS(*p, *s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("T = %.6f K\n", T)
	case "hs":
		T, p, region, err := tbl.PFromHS(*h, *s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("region: %v\nT = %.6f K\np = %.6f MPa\n", region, T, p)
	default:
		log.Fatalf("unknown --mode %q: expected tp, ph, ps or hs", *mode)
	}
}

func printProperties(props if97.Properties) {
	fmt.Printf("specific volume:            %.9f m^3/kg\n", props.SpecificVolume)
	fmt.Printf("density:                    %.6f kg/m^3\n", props.Density)
	fmt.Printf("specific internal energy:   %.6f kJ/kg\n", props.SpecificInternalEnergy)
	fmt.Printf("specific entropy:           %.6f kJ/(kg*K)\n", props.SpecificEntropy)
	fmt.Printf("specific enthalpy:          %.6f kJ/kg\n", props.SpecificEnthalpy)
	fmt.Printf("specific isochoric cv:      %.6f kJ/(kg*K)\n", props.SpecificIsochoricHeatCapacity)
	fmt.Printf("specific isobaric cp:       %.6f kJ/(kg*K)\n", props.SpecificIsobaricHeatCapacity)
	fmt.Printf("speed of sound:             %.6f m/s\n", props.SpeedOfSound)
}
