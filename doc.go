// Package genetics provides a Go implementation of a fixed-length, real-valued
// genetic algorithm.
//
// Given chromosomes and their fitness scores, it produces the next generation
// through roulette-wheel selection, uniform crossover, per-gene mutation and
// elitism. What a chromosome means and how it is scored is left to the caller.
//
// Every operator draws from a random source passed in by the caller, so a
// fixed seed reproduces a run exactly.
//
// Basic usage:
//
//	// Load configuration
//	config, settings, err := genetics.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Breed generations by hand
//	builder, err := genetics.NewGenerationBuilder(config, rand.New(rand.NewSource(42)))
//	if err != nil {
//		log.Fatalf("Error creating builder: %v", err)
//	}
//	pop, err := genetics.ScoreAll(chromosomes, fitness)
//	if err != nil {
//		log.Fatalf("Error scoring chromosomes: %v", err)
//	}
//	next, err := builder.BuildNextGeneration(pop, settings.PopSize)
//
//	// Or let Evolution run the loop
//	evo, err := genetics.NewEvolution(config, settings, rand.New(rand.NewSource(42)))
//	evo.Seed(chromosomes)
//	best, found, err := evo.Run(fitness)
package genetics
