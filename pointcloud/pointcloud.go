// SPDX-License-Identifier: MIT

package pointcloud

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvgeom/vector"
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

// ErrEmpty is returned when there are no points to write.
var ErrEmpty = errors.New("pointcloud: no points")

const (
	methodFromVectors = "FromVectors"
	methodToVectors   = "ToVectors"
	methodEncode      = "Encode"
	methodDecode      = "Decode"
)

// pcdVersion is the header version written by FromVectors.
const pcdVersion = 0.7

// identityViewpoint is the PCD viewpoint tx ty tz qw qx qy qz.
var identityViewpoint = []float32{0, 0, 0, 1, 0, 0, 0}

func pointcloudErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// FromVectors packs vs into an unorganized (Height 1) point cloud.
//
// Errors: ErrEmpty for no points, vector.ErrDomain for a non-finite
// coordinate or one outside the float32 range.
func FromVectors(vs []vector.Vec3) (*pc.PointCloud, error) {
	if len(vs) == 0 {
		return nil, pointcloudErrorf(methodFromVectors, ErrEmpty)
	}
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   pcdVersion,
			Fields:    []string{"x", "y", "z"},
			Size:      []int{4, 4, 4},
			Type:      []string{"F", "F", "F"},
			Count:     []int{1, 1, 1},
			Width:     len(vs),
			Height:    1,
			Viewpoint: append([]float32(nil), identityViewpoint...),
		},
		Points: len(vs),
	}
	pp.Data = make([]byte, len(vs)*pp.Stride())

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, pointcloudErrorf(methodFromVectors, err)
	}
	for i, v := range vs {
		p, err := narrow(v)
		if err != nil {
			return nil, pointcloudErrorf(methodFromVectors, fmt.Errorf("point %d: %w", i, err))
		}
		it.SetVec3(p)
		it.Incr()
	}

	return pp, nil
}

func narrow(v vector.Vec3) (mat.Vec3, error) {
	var p mat.Vec3
	for i, x := range v {
		if math.IsNaN(x) || math.Abs(x) > math.MaxFloat32 {
			return p, vector.ErrDomain
		}
		p[i] = float32(x)
	}

	return p, nil
}

// ToVectors unpacks the x, y, z fields of pp, widening to float64.
func ToVectors(pp *pc.PointCloud) ([]vector.Vec3, error) {
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, pointcloudErrorf(methodToVectors, err)
	}
	out := make([]vector.Vec3, 0, it.Len())
	for ; it.IsValid(); it.Incr() {
		p := it.Vec3()
		out = append(out, vector.Vec3{float64(p[0]), float64(p[1]), float64(p[2])})
	}

	return out, nil
}

// Encode writes vs to w as PCD.
func Encode(w io.Writer, vs []vector.Vec3) error {
	pp, err := FromVectors(vs)
	if err != nil {
		return pointcloudErrorf(methodEncode, err)
	}
	if err := pc.Marshal(pp, w); err != nil {
		return pointcloudErrorf(methodEncode, err)
	}

	return nil
}

// Decode reads a PCD stream and returns its points.
func Decode(r io.Reader) ([]vector.Vec3, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, pointcloudErrorf(methodDecode, err)
	}
	vs, err := ToVectors(pp)
	if err != nil {
		return nil, pointcloudErrorf(methodDecode, err)
	}

	return vs, nil
}
