package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/homehaven/homehaven/backend/go-services/internal/client"
	"github.com/homehaven/homehaven/backend/go-services/internal/property"
)

// propctl is a small CLI over the property API client, handy for poking a
// running service without a browser.
//
//	propctl [-addr URL] list [-type Villa] [-search pool]
//	propctl [-addr URL] get <id>
//	propctl [-addr URL] create -name N -type T -price P -location L -description D [-image URL] [-bedrooms N] [-bathrooms N] [-area N]
//	propctl [-addr URL] update <id> -name N ...
//	propctl [-addr URL] delete <id>
//	propctl [-addr URL] health
func main() {
	addr := flag.String("addr", envOr("PROPERTY_API_ADDR", "http://localhost:5001"), "property service base URL")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	api := client.NewAPI(*addr)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	var err error
	switch cmd {
	case "list":
		err = runList(ctx, api, args)
	case "get":
		err = runGet(ctx, api, args)
	case "create":
		err = runCreate(ctx, api, args)
	case "update":
		err = runUpdate(ctx, api, args)
	case "delete":
		err = runDelete(ctx, api, args)
	case "health":
		err = runHealth(ctx, api)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runList(ctx context.Context, api *client.API, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	typeFacet := fs.String("type", "", "type facet (House, Apartment, Condo, Townhouse, Villa; empty or All = no restriction)")
	search := fs.String("search", "", "case-insensitive search over name, location, description")
	fs.Parse(args)

	list, err := api.ListProperties(ctx, *typeFacet, *search)
	if err != nil {
		return err
	}
	return printJSON(list)
}

func runGet(ctx context.Context, api *client.API, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: propctl get <id>")
	}
	p, err := api.GetProperty(ctx, args[0])
	if err != nil {
		return err
	}
	return printJSON(p)
}

func runCreate(ctx context.Context, api *client.API, args []string) error {
	in, err := parseInput("create", args)
	if err != nil {
		return err
	}
	p, err := api.CreateProperty(ctx, in)
	if err != nil {
		return err
	}
	return printJSON(p)
}

func runUpdate(ctx context.Context, api *client.API, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: propctl update <id> -name ...")
	}
	id := args[0]
	in, err := parseInput("update", args[1:])
	if err != nil {
		return err
	}
	p, err := api.UpdateProperty(ctx, id, in)
	if err != nil {
		return err
	}
	return printJSON(p)
}

func runDelete(ctx context.Context, api *client.API, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: propctl delete <id>")
	}
	res, err := api.DeleteProperty(ctx, args[0])
	if err != nil {
		return err
	}
	return printJSON(res)
}

func runHealth(ctx context.Context, api *client.API) error {
	h, err := api.HealthCheck(ctx)
	if err != nil {
		return err
	}
	return printJSON(h)
}

func parseInput(name string, args []string) (*property.Input, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	pName := fs.String("name", "", "listing name (required)")
	pType := fs.String("type", "", "listing type (required)")
	pPrice := fs.String("price", "", "price, numeric or free text like '$250k' (required)")
	pLocation := fs.String("location", "", "location (required)")
	pDescription := fs.String("description", "", "description (required)")
	pImage := fs.String("image", "", "image URL (optional)")
	pBedrooms := fs.Int("bedrooms", 0, "bedroom count (optional)")
	pBathrooms := fs.Float64("bathrooms", 0, "bathroom count, half-steps allowed (optional)")
	pArea := fs.Int("area", 0, "area in sqft (optional)")
	fs.Parse(args)

	in := &property.Input{
		Name:        *pName,
		Type:        *pType,
		Location:    *pLocation,
		Description: *pDescription,
		Image:       *pImage,
	}
	if *pPrice != "" {
		// numeric-looking prices travel as numbers, anything else verbatim
		var n float64
		if _, err := fmt.Sscanf(*pPrice, "%g", &n); err == nil && fmt.Sprintf("%g", n) == *pPrice {
			in.Price = property.NumericPrice(n)
		} else {
			in.Price = property.TextPrice(*pPrice)
		}
	}
	if *pBedrooms > 0 {
		in.Bedrooms = property.OptionalInt{Value: *pBedrooms, Set: true}
	}
	if *pBathrooms > 0 {
		in.Bathrooms = property.OptionalNumber{Value: *pBathrooms, Set: true}
	}
	if *pArea > 0 {
		in.Area = property.OptionalInt{Value: *pArea, Set: true}
	}
	return in, nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
