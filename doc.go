// Package img2pdf converts a sequence of images, or a folder of images, into a
// multi-page PDF with one page per image.
//
// # Quick Start
//
// Create a converter and convert a folder:
//
//	conv, err := img2pdf.NewConverter(img2pdf.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := conv.Convert(ctx, img2pdf.Input{
//	    Dir:    "photos",
//	    Output: "album.pdf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Pages, "pages written to", doc.Path)
//
// A directory is scanned without recursion; files ending in .jpg, .jpeg or
// .png (any case) are used in filename order. An explicit list of sources can
// be given instead, mixing paths, in-memory buffers and base64 data URIs:
//
//	doc, err := conv.Convert(ctx, img2pdf.Input{
//	    Sources: []img2pdf.Source{
//	        img2pdf.FromPath("cover.jpg"),
//	        img2pdf.FromBytes(pngData),
//	        img2pdf.ParseSource("data:image/png;base64,iVBORw0..."),
//	    },
//	    Writer: w,
//	})
//
// # Page Layout
//
// Each page is drawn in a fixed order:
//
//  1. Background color over the whole page (Options.Background)
//  2. The image, scaled into the area inside the margins (Options.Scale,
//     Options.Align, Options.VAlign)
//  3. A border around that area, pushed out by Border.Margin
//  4. The page number, centred in the top or bottom margin band
//
// Scale mode fit keeps the aspect ratio and may enlarge small images, fill
// stretches the image to the usable area and none draws it at its natural
// size (one pixel per point) in the top-left corner of the usable area.
//
// # Filters
//
// Options.Filter recolors path and buffer images before placement:
// greyscale, sepia or negative. Data URI images are embedded as decoded.
//
// # Output Checks
//
// Options.Verify validates the generated PDF with pdfcpu and checks that it
// holds one page per image; Options.Optimize rewrites it with pdfcpu's
// optimizer before it is written.
package img2pdf
