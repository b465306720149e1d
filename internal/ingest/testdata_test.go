// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

const movieHeader = "Rank,Title,Genre,Description,Director,Actors,Year,Runtime (Minutes),Rating,Votes,Revenue (Millions),Metascore\n"

// sampleMovies holds the first three rows of the reference dataset plus
// two rows the mapper must reject.
const sampleMovies = movieHeader +
	`1,Guardians of the Galaxy,"Action,Adventure,Sci-Fi",A group of intergalactic criminals are forced to work together.,James Gunn,"Chris Pratt, Vin Diesel, Bradley Cooper, Zoe Saldana",2014,121,8.1,757074,333.13,76` + "\n" +
	`2,Prometheus,"Adventure,Mystery,Sci-Fi","Following clues to the origin of mankind, a team finds a structure on a distant moon.",Ridley Scott,"Noomi Rapace, Logan Marshall-Green, Michael Fassbender, Charlize Theron",2012,124,7,485820,126.46,65` + "\n" +
	`3,Split,"Horror,Thriller",Three girls are kidnapped by a man with a diagnosed 23 distinct personalities.,M. Night Shyamalan,"James McAvoy, Anya Taylor-Joy, Haley Lu Richardson, Jessica Sula",2016,117,7.3,157606,138.12,62` + "\n" +
	`x,Broken Rank,Drama,,Nobody,,2016,100,5,10,,` + "\n" +
	`5,,Drama,,Nobody,,2016,100,5,10,,` + "\n" +
	`6,The Lost City of Z,"Action,Adventure,Biography",A true-life drama.,James Gray,"Charlie Hunnam, Robert Pattinson, Sienna Miller, Tom Holland",2016,141,7.1,7188,8.01,78` + "\n" +
	`7,Mindhorn,Comedy,A has-been actor.,Sean Foley,"Essie Davis, Andrea Riseborough, Julian Barratt,Kenneth Branagh",2016,89,6.4,2490,,71` + "\n"

const sampleUsers = "id,username,password\n" +
	"1,fmercury,8734gfe2058v\n" +
	"2,thorke,gi9h00s\n" +
	"3,FMercury,duplicate\n" +
	"4,,nopassword\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
