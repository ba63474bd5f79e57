// Package bearing models rolling-element bearing kinematics.
//
// Given the element count, ball and pitch diameters, contact angle and shaft
// speed, [Geometry.Frequencies] predicts the four characteristic defect
// frequencies:
//
//	BPFO = n/2 · fr · (1 − d/D·cos β)   ball pass, outer race
//	BPFI = n/2 · fr · (1 + d/D·cos β)   ball pass, inner race
//	BSF  = D/(2d) · fr · (1 − (d/D·cos β)²)   ball spin
//	FTF  = fr/2 · (1 − d/D·cos β)       cage (fundamental train)
package bearing
