// Command gbstower builds the parametric finite element model of a
// gravity based wind turbine support structure: tower, GBS foundation,
// named surfaces and sets, ready for a solver pipeline.
package main

func main() {
	Execute()
}
