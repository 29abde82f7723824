// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package dataset generates synthetic integer datasets and reads and
// writes the plain-text dataset format.
//
// # File format
//
// A dataset file holds base-10 integers separated by whitespace, with no
// header. Save writes one integer per line; Load accepts any whitespace.
//
// # Generation
//
//	spec := dataset.Spec{Size: 10000, Distribution: dataset.Normal, Perturbation: 0.1}
//	data, err := dataset.NewGenerator().Generate(spec)
//
// Values fall in [1, Size]. The first floor(Size*(1-Perturbation))
// values are sorted ascending.
package dataset
