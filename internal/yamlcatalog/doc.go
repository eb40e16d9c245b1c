// Package yamlcatalog provides the YAML implementation of config.Loader.
//
// A file may hold any of three top-level keys:
//
//	aliases:
//	  - alias: TIPE I
//	    canonical: Taller de Integración Perfil Sello UV I
//	terms:
//	  - index: 1
//	    courses:
//	      - name: Cálculo I
//	        credits: 6
//	courses:
//	  - name: Electivo
//	    credits: 2
//	    requisites: [Cálculo I, Álgebra]
//
// Unknown keys are rejected.
package yamlcatalog
