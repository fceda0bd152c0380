// Package formula provides closed-form kinematics for introductory mechanics.
//
// Every function is pure and deterministic:
//
//   - [Velocity]: average velocity from distance and time
//   - [Acceleration]: average acceleration from a velocity change
//   - [Force]: Newton's second law
//   - [Projectile]: launch parameters of a drag-free projectile
//   - [NumericalVelocity]: velocity from sampled positions
//   - [Describe]: summary statistics of a sample
//
// Distances are in metres, time in seconds, mass in kilograms and angles in
// degrees. No unit conversion is performed.
//
// # Example
//
//	tr := formula.Projectile(20, 45)
//	fmt.Printf("range %.2f m\n", tr.Range)
package formula
