package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Faultbox/vasilopita/internal/pie"
	"github.com/Faultbox/vasilopita/internal/texture"
)

// OBJ material names for each slot.
var slotMaterials = map[pie.MaterialSlot]string{
	pie.SlotTop:  "crust",
	pie.SlotSide: "filling",
}

// WriteOBJ writes slices as Wavefront OBJ in disc space, one object per
// slice with a usemtl switch per material group. mtlLib, when set, is
// referenced with a mtllib statement. Fortune and coin are recorded as
// comments ahead of each object.
func WriteOBJ(w io.Writer, slices []*pie.Slice, mtlLib string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %d slices\n", len(slices))
	if mtlLib != "" {
		fmt.Fprintf(bw, "mtllib %s\n", mtlLib)
	}

	// OBJ indices are 1-based and global across objects.
	base := 1
	for _, s := range slices {
		m := s.WorldMesh()
		if m == nil {
			continue
		}

		fmt.Fprintf(bw, "\n# fortune: %s\n", s.Fortune)
		if s.HasCoin {
			fmt.Fprintln(bw, "# coin")
		}
		fmt.Fprintf(bw, "o slice_%d\n", s.Index)

		for _, v := range m.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
		}
		for _, v := range m.Vertices {
			fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord[0], v.TexCoord[1])
		}
		for _, v := range m.Vertices {
			fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
		}

		for _, g := range m.Groups {
			fmt.Fprintf(bw, "usemtl %s\n", slotMaterials[g.Slot])
			end := g.StartIndex + g.IndexCount
			for i := g.StartIndex; i+3 <= end; i += 3 {
				a := int(m.Indices[i]) + base
				b := int(m.Indices[i+1]) + base
				c := int(m.Indices[i+2]) + base
				fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
			}
		}
		base += len(m.Vertices)
	}

	return bw.Flush()
}

// WriteMTL writes the crust and filling materials, pointing their diffuse,
// normal and bump maps at the file names WriteBundle uses. fill scales the
// filling map so it repeats the way the synthesizer intends.
func WriteMTL(w io.Writer, fill texture.Sampling) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "newmtl %s\n", slotMaterials[pie.SlotTop])
	fmt.Fprintln(bw, "Kd 1 1 1")
	fmt.Fprintf(bw, "map_Kd %s\n", SurfaceColorFile)
	fmt.Fprintf(bw, "norm %s\n", SurfaceNormalFile)
	fmt.Fprintf(bw, "map_Pr %s\n", SurfaceRoughnessFile)
	fmt.Fprintf(bw, "map_ao %s\n", SurfaceAOFile)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "newmtl %s\n", slotMaterials[pie.SlotSide])
	fmt.Fprintln(bw, "Kd 1 1 1")
	fmt.Fprintf(bw, "map_Kd -s %g %g 1 %s\n", fill.RepeatU, fill.RepeatV, FillingColorFile)
	fmt.Fprintf(bw, "map_bump %s\n", FillingBumpFile)
	return bw.Flush()
}

// SaveDisc writes name.obj and name.mtl into dir and returns the OBJ path.
func SaveDisc(dir, name string, slices []*pie.Slice) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	mtlName := name + ".mtl"
	objPath := filepath.Join(dir, name+".obj")

	err := writeFile(filepath.Join(dir, mtlName), func(w io.Writer) error {
		return WriteMTL(w, texture.FillingSampling())
	})
	if err != nil {
		return "", err
	}
	err = writeFile(objPath, func(w io.Writer) error {
		return WriteOBJ(w, slices, mtlName)
	})
	if err != nil {
		return "", err
	}
	return objPath, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", filepath.Base(path), err)
	}
	return nil
}
