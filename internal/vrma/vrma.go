// Package vrma extracts animation metadata from VRMA files, which are glTF
// binary (GLB) containers with one or more animations.
package vrma

import (
	"bytes"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
)

const defaultFramerate = 30

// Metadata holds the technical attributes of an animation clip.
type Metadata struct {
	Duration   float64 `json:"duration"`
	Framerate  int     `json:"framerate"`
	FrameCount int     `json:"frame_count"`
}

// ExtractMetadata parses a VRMA/GLB payload and derives clip duration, frame
// count and an estimated framerate. Duration is the maximum keyframe time
// across all animation input accessors; framerate falls back to 30 when it
// cannot be derived. Files without animations yield zero-valued metadata and
// no error.
func ExtractMetadata(data []byte) (Metadata, error) {
	meta := Metadata{Framerate: defaultFramerate}

	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return meta, fmt.Errorf("decode glb: %w", err)
	}
	if len(doc.Animations) == 0 {
		return meta, nil
	}

	var maxDuration float64
	var maxCount int
	for _, anim := range doc.Animations {
		for _, sampler := range anim.Samplers {
			if sampler == nil || int(sampler.Input) >= len(doc.Accessors) {
				continue
			}
			accessor := doc.Accessors[sampler.Input]
			if accessor == nil {
				continue
			}
			// The input accessor holds keyframe timestamps; its declared max
			// is the clip end time.
			if len(accessor.Max) > 0 {
				if d := float64(accessor.Max[0]); d > maxDuration {
					maxDuration = d
				}
			}
			if c := int(accessor.Count); c > maxCount {
				maxCount = c
			}
		}
	}

	meta.Duration = math.Round(maxDuration*1000) / 1000
	meta.FrameCount = maxCount
	if maxDuration > 0 && maxCount > 0 {
		meta.Framerate = int(math.Round(float64(maxCount) / maxDuration))
	}
	return meta, nil
}
