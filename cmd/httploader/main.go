package main

import (
	"flag"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_hashids/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_hashids/internal/service/modelrecord"
)

func main() {
	a := flag.String("a", "http://localhost:8080", "Server address")
	e := flag.String("e", "loadtest", "Entity to load")
	n := flag.Int("n", 20, "Iterations per endpoint")
	flag.Parse()
	address := *a
	entity := *e
	iterations := *n

	const ping = "/ping"
	records := "/api/" + entity
	codec := "/codec/" + entity

	client := resty.New().SetTimeout(5 * time.Second)

	// Performing ping loading
	log.Println("Performing ping loading")
	for i := 0; i < iterations; i++ {
		_, err := client.R().Get(address + ping)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Performing create loading
	log.Println("Performing create loading")
	var hashids []string
	for i := 0; i < iterations; i++ {
		var record modelrecord.Record
		res, err := client.R().
			SetBody(modeldto.RequestCreate{Payload: uuid.New().String()}).
			SetResult(&record).
			Post(address + records)
		if err != nil {
			log.Fatal(err)
		}
		if res.StatusCode() == http.StatusCreated {
			hashids = append(hashids, record.Hashid)
		}
	}
	log.WithFields(log.Fields{"created": len(hashids)}).Info("Create loading finished")

	// Performing get loading
	log.Println("Performing get loading")
	for _, hash := range hashids {
		res, err := client.R().Get(address + records + "/" + hash)
		if err != nil {
			log.Fatal(err)
		}
		if res.StatusCode() != http.StatusOK {
			log.WithFields(log.Fields{"hashid": hash, "status": res.StatusCode()}).Warn("Record lookup failed")
		}
	}

	// Performing list loading
	log.Println("Performing list loading")
	for i := 0; i < iterations; i++ {
		_, err := client.R().Get(address + records)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Performing codec loading
	log.Println("Performing codec loading")
	for i := 0; i < iterations; i++ {
		var encoded modeldto.ResponseEncode
		_, err := client.R().SetResult(&encoded).Get(address + codec + "/encode/" + strconv.Itoa(i))
		if err != nil {
			log.Fatal(err)
		}
		var decoded modeldto.ResponseDecode
		_, err = client.R().SetResult(&decoded).Get(address + codec + "/decode/" + encoded.Hashid)
		if err != nil {
			log.Fatal(err)
		}
		if decoded.ID != int64(i) {
			log.WithFields(log.Fields{"id": i, "hashid": encoded.Hashid, "decoded": decoded.ID}).Warn("Round trip mismatch")
		}
	}

	// Performing delete loading
	log.Println("Performing delete loading")
	for _, hash := range hashids {
		_, err := client.R().Delete(address + records + "/" + hash)
		if err != nil {
			log.Fatal(err)
		}
	}
}
