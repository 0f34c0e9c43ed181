package godielectric

// GabrielGreyMatter exposes the formula test fixture to the external tests.
var GabrielGreyMatter = gabrielGreyMatter
