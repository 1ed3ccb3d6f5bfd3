// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection returns the layers as GeoJSON polygon features in
// UV space, with the name, title and fill color as properties.
func (sc *Scene) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range sc.Layers {
		l := &sc.Layers[i]
		ring := make(orb.Ring, 0, len(l.UV)+1)
		for _, p := range l.UV {
			ring = append(ring, orb.Point{p.X, p.Y})
		}
		if len(ring) > 0 {
			ring = append(ring, ring[0])
		}
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["name"] = l.Name
		f.Properties["title"] = l.Title
		f.Properties["fill"] = l.FillHex()
		fc.Append(f)
	}
	return fc
}

// WriteGeoJSON writes the scene as a GeoJSON feature collection.
func (sc *Scene) WriteGeoJSON(w io.Writer) error {
	data, err := sc.FeatureCollection().MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
