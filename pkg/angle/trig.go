package angle

import "math"

func Sin(a Angular) float64 { return a.Rad().Sin() }
func Cos(a Angular) float64 { return a.Rad().Cos() }
func Tan(a Angular) float64 { return a.Rad().Tan() }

func Asin(n float64) Radian { return Radian(math.Asin(n)) }
func Acos(n float64) Radian { return Radian(math.Acos(n)) }
func Atan(n float64) Radian { return Radian(math.Atan(n)) }

// Atan2 returns the angle of the point (x, y), in the usual math.Atan2 order.
func Atan2(y, x float64) Radian { return Radian(math.Atan2(y, x)) }
