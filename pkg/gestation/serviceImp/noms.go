package serviceImp

// Pool of piglet names handed out at birth. Names already carried by the
// project's herd are skipped; when the pool runs dry the code doubles as a
// name so uniqueness never blocks a litter.
var nomsPorcelets = []string{
	"Babe", "Rosette", "Truffe", "Noisette", "Cannelle", "Caramel",
	"Biscotte", "Pompon", "Grison", "Fripon", "Margot", "Capucine",
	"Jambon", "Praline", "Reglisse", "Mirabelle", "Pivoine", "Cachou",
	"Nougat", "Brioche", "Tartine", "Poivron", "Chipie", "Balthazar",
	"Gribouille", "Paquerette", "Filou", "Moustique", "Perlette", "Romarin",
}

func choisirNoms(nomsExistants []string, codes []string) []string {
	pris := make(map[string]bool, len(nomsExistants))
	for _, n := range nomsExistants {
		if n != "" {
			pris[n] = true
		}
	}
	out := make([]string, 0, len(codes))
	i := 0
	for _, code := range codes {
		nom := ""
		for i < len(nomsPorcelets) {
			candidat := nomsPorcelets[i]
			i++
			if !pris[candidat] {
				nom = candidat
				break
			}
		}
		if nom == "" {
			nom = "Porcelet " + code
		}
		pris[nom] = true
		out = append(out, nom)
	}
	return out
}
