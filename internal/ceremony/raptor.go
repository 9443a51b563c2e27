// raptor.go - RaptorLT degree distribution and source selection
// Copyright (C) 2024  The ash developers.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package ceremony

import (
	"math"
	"math/rand"
)

// robustSolitonDegree derives a degree d in [1, k] from seed using a
// Robust Soliton distribution, per spec.md §4.3's Open Question: "any
// deterministic generator provided both ends agree" is acceptable.
// Deterministic given (k, seed): both encoder and decoder call this
// with the same arguments and get the same answer.
func robustSolitonDegree(k uint32, seed uint32) uint32 {
	if k == 0 {
		return 0
	}
	if k == 1 {
		return 1
	}
	src := rand.New(rand.NewSource(int64(seed)*2 + 1))

	const c = 0.1
	const delta = 0.05
	n := float64(k)
	r := c * math.Log(n/delta) * math.Sqrt(n)
	if r < 1 {
		r = 1
	}

	// Ideal soliton.
	rho := make([]float64, k+1) // 1-indexed
	rho[1] = 1.0 / n
	for d := uint32(2); d <= k; d++ {
		rho[d] = 1.0 / (float64(d) * float64(d-1))
	}

	// Robust spike tau(d), added for d < k/r and at d == k/r.
	tau := make([]float64, k+1)
	thresh := uint32(n / r)
	for d := uint32(1); d < thresh && d <= k; d++ {
		tau[d] = r / (float64(d) * n)
	}
	if thresh >= 1 && thresh <= k {
		tau[thresh] += r * math.Log(r/delta) / n
	}

	mu := make([]float64, k+1)
	var sum float64
	for d := uint32(1); d <= k; d++ {
		mu[d] = rho[d] + tau[d]
		sum += mu[d]
	}

	target := src.Float64() * sum
	var cum float64
	for d := uint32(1); d <= k; d++ {
		cum += mu[d]
		if target <= cum {
			return d
		}
	}
	return k
}

// sourceIndices returns d distinct source-block indices in [0, k) by a
// PRF-seeded partial Fisher-Yates shuffle keyed on seed, per spec.md
// §4.3: "derive d distinct source indices ... via PRF-seeded
// Fisher-Yates over a permutation derived from seed".
func sourceIndices(k uint32, seed uint32, d uint32) []uint32 {
	if d > k {
		d = k
	}
	perm := make([]uint32, k)
	for i := range perm {
		perm[i] = uint32(i)
	}
	src := rand.New(rand.NewSource(int64(seed)*2 + 2))
	for i := uint32(0); i < d; i++ {
		j := i + uint32(src.Int63n(int64(k-i)))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return append([]uint32(nil), perm[:d]...)
}

